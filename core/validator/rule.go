package validator

// Rule pairs a lazy check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns ValidationErrors for the failures,
// or nil when all pass. Rules with a nil Check always pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check == nil || rule.Check() {
			continue
		}
		errs.Add(rule.Error)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}
