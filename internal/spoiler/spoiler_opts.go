package spoiler

import "fmt"

type RendererOpt func(*Renderer) error

func WithWidth(n int) RendererOpt {
	return func(r *Renderer) error {
		if n <= 0 {
			return fmt.Errorf("width must be positive, got %d", n)
		}
		r.width = n
		return nil
	}
}

// WithTemplate replaces the built in layout. The template sees the result
// fields, Multi, and the sprig functions plus itemName and playerName.
func WithTemplate(text string) RendererOpt {
	return func(r *Renderer) error {
		tmpl, err := parse(text)
		if err != nil {
			return err
		}
		r.tmpl = tmpl
		return nil
	}
}
