package canvas

// Tee returns a Layer that forwards every call to each of layers in order.
// Hosts use it to paint a layer on screen while recording it.
func Tee(layers ...Layer) Layer {
	return tee(layers)
}

type tee []Layer

func (t tee) BeginPath() {
	for _, l := range t {
		l.BeginPath()
	}
}

func (t tee) MoveTo(x, y float64) {
	for _, l := range t {
		l.MoveTo(x, y)
	}
}

func (t tee) LineTo(x, y float64) {
	for _, l := range t {
		l.LineTo(x, y)
	}
}

func (t tee) Arc(x, y, radius, start, end float64, ccw bool) {
	for _, l := range t {
		l.Arc(x, y, radius, start, end, ccw)
	}
}

func (t tee) FillRect(x, y, w, h float64) {
	for _, l := range t {
		l.FillRect(x, y, w, h)
	}
}

func (t tee) SetStrokeColor(c string) {
	for _, l := range t {
		l.SetStrokeColor(c)
	}
}

func (t tee) SetFillColor(c string) {
	for _, l := range t {
		l.SetFillColor(c)
	}
}

func (t tee) SetLineWidth(w float64) {
	for _, l := range t {
		l.SetLineWidth(w)
	}
}

func (t tee) Fill() {
	for _, l := range t {
		l.Fill()
	}
}

func (t tee) Stroke() {
	for _, l := range t {
		l.Stroke()
	}
}

func (t tee) Clear() {
	for _, l := range t {
		l.Clear()
	}
}
