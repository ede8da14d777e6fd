package typechecker

// Functions and lambdas nest, so the expected return type is a stack. A
// return statement always checks against the innermost entry.

func (c *Checker) enterFunction(ret Type) {
	c.returns = append(c.returns, ret)
}

func (c *Checker) leaveFunction() {
	if n := len(c.returns); n > 0 {
		c.returns = c.returns[:n-1]
	}
}

func (c *Checker) expectedReturn() (Type, bool) {
	n := len(c.returns)
	if n == 0 {
		return nil, false
	}
	return c.returns[n-1], true
}
