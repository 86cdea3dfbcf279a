package postprocessor

// Run drives each calculator through one setup/process cycle in registration
// order and returns every indicator in execution order. Callers rely on the
// fixed ordering when rendering reports. Each calculator is cleared afterwards
// so it can be reused.
func Run(pps []Postprocessor, params Params) ([]Result, error) {
	var out []Result
	for _, pp := range pps {
		if err := pp.Setup(params); err != nil {
			return nil, err
		}
		if err := pp.Process(); err != nil {
			return nil, err
		}
		out = append(out, pp.Results()...)
		pp.Clear()
	}
	return out, nil
}
