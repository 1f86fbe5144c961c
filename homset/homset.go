package homset

import (
	"fmt"
	"math/big"

	"combinat-kernel/gf"
)

// Hom is a unital ring homomorphism. For a field domain, genImage holds the
// image of the domain generator in the codomain.
type Hom struct {
	dom, cod Ring
	genImage gf.Elem
}

// Domain returns the domain ring.
func (h Hom) Domain() Ring { return h.dom }

// Codomain returns the codomain ring.
func (h Hom) Codomain() Ring { return h.cod }

func (h Hom) String() string {
	return fmt.Sprintf("Ring morphism from %s to %s", h.dom, h.cod)
}

// ApplyInt maps an element of an integer-type domain (Z or Z/N) into an
// integer-type codomain.
func (h Hom) ApplyInt(x int64) (int64, error) {
	switch cod := h.cod.(type) {
	case Integers:
		if _, ok := h.dom.(Integers); !ok {
			return 0, fmt.Errorf("homset: no integer image for domain %s", h.dom)
		}
		return x, nil
	case IntegersMod:
		return ((x % cod.N) + cod.N) % cod.N, nil
	default:
		return 0, fmt.Errorf("homset: codomain %s is not an integer ring", h.cod)
	}
}

// ApplyField maps a field element, given by its power-basis coordinates in
// the domain, into the codomain field.
func (h Hom) ApplyField(coords []uint64) (gf.Elem, error) {
	cod, ok := h.cod.(GaloisField)
	if !ok {
		return gf.Elem{}, fmt.Errorf("homset: codomain %s is not a field", h.cod)
	}
	if _, ok := h.dom.(GaloisField); !ok {
		return gf.Elem{}, fmt.Errorf("homset: domain %s is not a field", h.dom)
	}
	return cod.F.EvalPoly(coords, h.genImage), nil
}

// GenImage returns the image of the domain generator for field
// homomorphisms.
func (h Hom) GenImage() gf.Elem { return h.genImage }

func ringEqual(a, b Ring) bool {
	switch x := a.(type) {
	case Integers:
		_, ok := b.(Integers)
		return ok
	case IntegersMod:
		y, ok := b.(IntegersMod)
		return ok && x.N == y.N
	case GaloisField:
		y, ok := b.(GaloisField)
		return ok && x.F.P == y.F.P && x.F.N == y.F.N
	}
	return false
}

// Equal reports whether two homomorphisms coincide: same domain and
// codomain, and for field maps the same generator image.
func (h Hom) Equal(other Hom) bool {
	if !ringEqual(h.dom, other.dom) || !ringEqual(h.cod, other.cod) {
		return false
	}
	if cod, ok := h.cod.(GaloisField); ok {
		if _, ok := h.dom.(GaloisField); ok {
			return cod.F.Equal(h.genImage, other.genImage)
		}
	}
	return true
}

// Compose returns the composite h after g: first apply g, then h. The
// codomain of g must equal the domain of h.
func (h Hom) Compose(g Hom) (Hom, error) {
	if !ringEqual(g.cod, h.dom) {
		return Hom{}, fmt.Errorf("homset: codomain %s does not match domain %s", g.cod, h.dom)
	}
	out := Hom{dom: g.dom, cod: h.cod}
	if mid, ok := g.cod.(GaloisField); ok {
		img, err := h.ApplyField(mid.F.Coords(g.genImage))
		if err != nil {
			return Hom{}, err
		}
		out.genImage = img
	}
	return out, nil
}

// HomSet is the set of ring homomorphisms between two rings.
type HomSet struct {
	Dom, Cod Ring
}

// New returns Hom(dom, cod).
func New(dom, cod Ring) *HomSet {
	return &HomSet{Dom: dom, Cod: cod}
}

func (s *HomSet) String() string {
	return fmt.Sprintf("Set of Homomorphisms from %s to %s", s.Dom, s.Cod)
}

// List returns all homomorphisms in the set. Between Z/N rings and from Z
// there is at most one; between finite fields GF(p^n) -> GF(p^m) with n | m
// there are exactly n, the Conway embedding composed with the Frobenius
// automorphisms of the codomain.
func (s *HomSet) List() ([]Hom, error) {
	switch dom := s.Dom.(type) {
	case Integers:
		switch s.Cod.(type) {
		case Integers, IntegersMod:
			return []Hom{{dom: s.Dom, cod: s.Cod}}, nil
		case GaloisField:
			return nil, fmt.Errorf("homset: maps from Z to %s are not ring maps of this library", s.Cod)
		}
	case IntegersMod:
		switch cod := s.Cod.(type) {
		case Integers:
			return nil, nil
		case IntegersMod:
			if dom.N%cod.N == 0 {
				return []Hom{{dom: s.Dom, cod: s.Cod}}, nil
			}
			return nil, nil
		}
	case GaloisField:
		cod, ok := s.Cod.(GaloisField)
		if !ok {
			return nil, nil
		}
		return fieldHoms(dom, cod)
	}
	return nil, fmt.Errorf("homset: unsupported ring pair (%s, %s)", s.Dom, s.Cod)
}

// NaturalMap returns the distinguished homomorphism of the set: reduction
// for quotients of the domain, the Conway embedding for subfields. An error
// is returned when the set is empty.
func (s *HomSet) NaturalMap() (Hom, error) {
	homs, err := s.List()
	if err != nil {
		return Hom{}, err
	}
	if len(homs) == 0 {
		return Hom{}, fmt.Errorf("homset: natural map from %s to %s is not a ring map", s.Dom, s.Cod)
	}
	return homs[0], nil
}

// Contains reports whether h belongs to the set.
func (s *HomSet) Contains(h Hom) (bool, error) {
	if !ringEqual(h.dom, s.Dom) || !ringEqual(h.cod, s.Cod) {
		return false, nil
	}
	homs, err := s.List()
	if err != nil {
		return false, err
	}
	for _, x := range homs {
		if x.Equal(h) {
			return true, nil
		}
	}
	return false, nil
}

// IsEmpty reports whether the set has no elements.
func (s *HomSet) IsEmpty() (bool, error) {
	homs, err := s.List()
	if err != nil {
		return false, err
	}
	return len(homs) == 0, nil
}

// fieldHoms lists the homomorphisms GF(p^n) -> GF(p^m). The Conway
// embedding sends the domain generator to x^t with t = (p^m - 1)/(p^n - 1);
// its Frobenius twists exhaust the set.
func fieldHoms(dom, cod GaloisField) ([]Hom, error) {
	if dom.F.P != cod.F.P {
		return nil, nil
	}
	n, m := dom.F.N, cod.F.N
	if m%n != 0 {
		return nil, nil
	}
	pn := new(big.Int).Exp(big.NewInt(int64(dom.F.P)), big.NewInt(int64(n)), nil)
	pm := new(big.Int).Exp(big.NewInt(int64(cod.F.P)), big.NewInt(int64(m)), nil)
	t := new(big.Int).Sub(pm, big.NewInt(1))
	t.Div(t, new(big.Int).Sub(pn, big.NewInt(1)))
	img := cod.F.Pow(cod.F.Gen(), t)

	domMod := make([]uint64, len(dom.F.Modulus))
	copy(domMod, dom.F.Modulus)
	homs := make([]Hom, 0, n)
	cur := img
	for i := 0; i < n; i++ {
		if !cod.F.IsZero(cod.F.EvalPoly(domMod, cur)) {
			return nil, fmt.Errorf("homset: image %v is not a root of the domain modulus", cur.Limb)
		}
		homs = append(homs, Hom{dom: dom, cod: cod, genImage: cur})
		cur = cod.F.Frobenius(cur)
	}
	return homs, nil
}

// FromGenImage builds the field homomorphism sending the domain generator
// to img, rejecting images that violate the domain's defining relation.
func (s *HomSet) FromGenImage(img gf.Elem) (Hom, error) {
	dom, ok := s.Dom.(GaloisField)
	if !ok {
		return Hom{}, fmt.Errorf("homset: domain %s has no free generator image", s.Dom)
	}
	cod, ok := s.Cod.(GaloisField)
	if !ok {
		return Hom{}, fmt.Errorf("homset: codomain %s is not a field", s.Cod)
	}
	if dom.F.P != cod.F.P {
		return Hom{}, fmt.Errorf("homset: characteristics %d and %d differ", dom.F.P, cod.F.P)
	}
	if !cod.F.IsZero(cod.F.EvalPoly(dom.F.Modulus, img)) {
		return Hom{}, fmt.Errorf("homset: generator image is not a root of the domain modulus")
	}
	return Hom{dom: dom, cod: cod, genImage: img}, nil
}
