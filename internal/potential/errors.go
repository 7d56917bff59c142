package potential

import "errors"

// ErrOptimizer is wrapped and returned by a Potential's GlobalMin (and
// by anything else in this module that delegates to an external
// nonlinear optimizer) when the search did not converge within its
// configured budget (spec section 4.1).
var ErrOptimizer = errors.New("potential: optimizer did not converge within its configured budget")
