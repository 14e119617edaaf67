package panics

func fail() {
	panic("boom") // want `panic\(\) should not be used in production code`
}

func shadowed() {
	panic := func(string) {}
	panic("not the builtin")
}
