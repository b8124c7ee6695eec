package render

type Renderer interface {
	Init() error
	Deinit() error
	Render(c *Canvas) error
}
