//go:build setup_greenhouse

package setups

var Selected = Greenhouse
