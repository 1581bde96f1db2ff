package osname

func Name() string { return "windows" }
