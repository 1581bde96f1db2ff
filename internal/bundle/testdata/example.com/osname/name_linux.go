package osname

func Name() string { return "linux" }
