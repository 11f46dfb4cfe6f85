package geo

// Ring is a closed polygon ring of coordinates. The closing vertex may be
// repeated or omitted; both forms appear in surveyed venue data.
type Ring []LngLat

// vertices returns the ring without a duplicated closing vertex.
func (r Ring) vertices() []LngLat {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// Centroid returns the arithmetic mean of the ring's vertices. For the
// small, near-convex room footprints in venue data this is close enough
// for label placement.
func (r Ring) Centroid() LngLat {
	vs := r.vertices()
	if len(vs) == 0 {
		return LngLat{}
	}
	var sumLng, sumLat float64
	for _, v := range vs {
		sumLng += v.Lng
		sumLat += v.Lat
	}
	n := float64(len(vs))
	return LngLat{Lng: sumLng / n, Lat: sumLat / n}
}

// BoundingBox returns the min and max corners of the ring.
func (r Ring) BoundingBox() (LngLat, LngLat) {
	if len(r) == 0 {
		return LngLat{}, LngLat{}
	}
	mn, mx := r[0], r[0]
	for _, v := range r[1:] {
		if v.Lng < mn.Lng {
			mn.Lng = v.Lng
		}
		if v.Lat < mn.Lat {
			mn.Lat = v.Lat
		}
		if v.Lng > mx.Lng {
			mx.Lng = v.Lng
		}
		if v.Lat > mx.Lat {
			mx.Lat = v.Lat
		}
	}
	return mn, mx
}

// ExpandBounds grows (mn, mx) to include the ring.
func (r Ring) ExpandBounds(mn, mx LngLat) (LngLat, LngLat) {
	rmn, rmx := r.BoundingBox()
	if len(r) == 0 {
		return mn, mx
	}
	if rmn.Lng < mn.Lng {
		mn.Lng = rmn.Lng
	}
	if rmn.Lat < mn.Lat {
		mn.Lat = rmn.Lat
	}
	if rmx.Lng > mx.Lng {
		mx.Lng = rmx.Lng
	}
	if rmx.Lat > mx.Lat {
		mx.Lat = rmx.Lat
	}
	return mn, mx
}
