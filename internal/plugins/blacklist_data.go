package plugins

// blacklistEntries are supplemental detectors inspired by the shape of
// bandit's declarative Call/Import blacklists (name, qualnames, message,
// level). No JS-specific blacklist data exists upstream of this port, so
// these entries are chosen directly against well-known Node.js APIs with
// a clear remote-code-execution or unsafe-deserialization profile.
var blacklistEntries = []Entry{
	{
		ID:         "P701",
		Name:       "child_process_exec",
		Kind:       "Call",
		Qualnames:  []string{"child_process.exec", "child_process.execSync"},
		Message:    "Use of child_process.exec with untrusted input may allow arbitrary shell command execution.",
		Severity:   "HIGH",
		Confidence: "MEDIUM",
	},
	{
		ID:         "P702",
		Name:       "vm_run_in_context",
		Kind:       "Call",
		Qualnames:  []string{"vm.runInNewContext", "vm.runInThisContext", "vm.runInContext"},
		Message:    "Use of vm.runIn*Context executes arbitrary code outside the current sandbox's guarantees.",
		Severity:   "HIGH",
		Confidence: "MEDIUM",
	},
	{
		ID:         "P703",
		Name:       "insecure_deserialize",
		Kind:       "Call",
		Qualnames:  []string{"node-serialize.unserialize"},
		Message:    "node-serialize.unserialize on untrusted input can execute attacker-controlled code.",
		Severity:   "HIGH",
		Confidence: "LOW",
	},
	{
		ID:         "P704",
		Name:       "insecure_child_process_module",
		Kind:       "Require",
		Qualnames:  []string{"child_process"},
		Message:    "Requiring child_process; review all call sites for unsanitized shell command construction.",
		Severity:   "LOW",
		Confidence: "LOW",
	},
}
