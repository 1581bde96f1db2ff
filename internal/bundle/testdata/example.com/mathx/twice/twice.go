package twice

func Of(x int) int { return 2 * x }
