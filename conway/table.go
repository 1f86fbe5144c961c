package conway

// builtinTable holds the distributed Conway polynomials, keyed by
// (characteristic, degree), coefficients ascending with leading 1.
var builtinTable = map[Key][]int64{
	{2, 1}: {1, 1},
	{2, 2}: {1, 1, 1},
	{2, 3}: {1, 1, 0, 1},
	{2, 4}: {1, 1, 0, 0, 1},
	{2, 5}: {1, 0, 1, 0, 0, 1},
	{2, 6}: {1, 1, 0, 1, 1, 0, 1},
	{2, 7}: {1, 1, 0, 0, 0, 0, 0, 1},
	{2, 8}: {1, 0, 1, 1, 1, 0, 0, 0, 1},
	{2, 9}: {1, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	{3, 1}: {1, 1},
	{3, 2}: {2, 2, 1},
	{3, 3}: {1, 2, 0, 1},
	{3, 4}: {2, 0, 0, 2, 1},
	{3, 5}: {1, 2, 0, 0, 0, 1},
	{3, 6}: {2, 2, 1, 0, 2, 0, 1},
	{3, 7}: {1, 0, 2, 0, 0, 0, 0, 1},
	{3, 10}: {2, 1, 0, 0, 2, 2, 2, 0, 0, 0, 1},
	{3, 21}: {1, 2, 0, 2, 0, 1, 2, 0, 2, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{5, 1}: {3, 1},
	{5, 2}: {2, 4, 1},
	{5, 3}: {3, 3, 0, 1},
	{5, 4}: {2, 4, 4, 0, 1},
	{5, 5}: {3, 4, 0, 0, 0, 1},
	{7, 1}: {4, 1},
	{7, 2}: {3, 6, 1},
	{7, 3}: {4, 0, 6, 1},
	{7, 4}: {3, 4, 5, 0, 1},
	{11, 1}: {9, 1},
	{11, 2}: {2, 7, 1},
	{11, 3}: {9, 2, 0, 1},
	{13, 1}: {11, 1},
	{13, 2}: {2, 12, 1},
	{13, 3}: {11, 2, 0, 1},
	{17, 1}: {14, 1},
	{17, 2}: {3, 16, 1},
	{19, 1}: {17, 1},
	{19, 2}: {2, 18, 1},
	{23, 1}: {18, 1},
	{23, 2}: {5, 21, 1},
	{29, 1}: {27, 1},
	{29, 2}: {2, 24, 1},
	{31, 1}: {28, 1},
	{31, 2}: {3, 29, 1},
	{37, 1}: {35, 1},
	{37, 2}: {2, 33, 1},
	{41, 1}: {35, 1},
	{43, 1}: {40, 1},
	{47, 1}: {42, 1},
	{53, 1}: {51, 1},
	{59, 1}: {57, 1},
	{61, 1}: {59, 1},
	{67, 1}: {65, 1},
	{71, 1}: {64, 1},
}
