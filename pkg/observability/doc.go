/*
Package observability exports insist checks as Prometheus metrics.

Plug the hooks into a Checker:

	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}
	checker := insist.New(insist.WithHooks(m.Hooks()))
*/
package observability
