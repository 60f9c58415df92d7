package tagmerge

// Merge processes template with a WriteRule bound to <namespace:write> and
// returns the merged output.
func Merge(template string, src ContentSource, namespace string, opts ...func(*Processor)) (string, error) {
	p := NewProcessor(template, opts...)
	p.AddRule(namespace+":write", NewWriteRule(src))
	if err := p.Process(); err != nil {
		return "", err
	}
	return p.Output(), nil
}
