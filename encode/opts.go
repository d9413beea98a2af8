package encode

type EncodeOption func(*Renderer)

// SortByKey orders the definitions of every dictionary by name.  Definitions
// with equal names keep their relative order.
func SortByKey(v bool) EncodeOption {
	return func(r *Renderer) { r.sortByKey = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(r *Renderer) {
		if c == nil {
			r.color = nil
			return
		}
		r.color = c.Color
	}
}
