package compositor

// Rect is a placement in screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Place resolves a layer request against an output rectangle: zero sizes
// stretch to the output, and the anchors pick the edge the surface hugs.
// Opposite anchors, or none, center the surface on that axis.
func Place(req LayerRequest, output Rect) Rect {
	r := Rect{Width: int(req.Width), Height: int(req.Height)}
	if r.Width == 0 || r.Width > output.Width {
		r.Width = output.Width
	}
	if r.Height == 0 || r.Height > output.Height {
		r.Height = output.Height
	}

	r.X = placeAxis(output.X, output.Width, r.Width, req.Anchor.Has(AnchorLeft), req.Anchor.Has(AnchorRight))
	r.Y = placeAxis(output.Y, output.Height, r.Height, req.Anchor.Has(AnchorTop), req.Anchor.Has(AnchorBottom))
	return r
}

func placeAxis(origin, span, size int, low, high bool) int {
	switch {
	case low && !high:
		return origin
	case high && !low:
		return origin + span - size
	default:
		return origin + (span-size)/2
	}
}
