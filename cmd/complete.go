package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies are the display currencies offered by the completion.
var currencies = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY", "KRW", "INR", "BRL", "RUB"}

// Completion returns the shell completion of the flags in fs.
func Completion(fs *flag.FlagSet) *complete.Command {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	flags["c"] = currencies
	flags["api"] = predict.Set{"v1", "pro"}
	flags["holdings"] = predict.Or(predict.Files("*.json"), predict.Files("*.yaml"), predict.Files("*.yml"))
	return &complete.Command{Flags: flags}
}
