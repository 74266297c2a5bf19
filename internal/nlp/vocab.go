package nlp

// Domain vocabularies, fixed at startup and safe for concurrent reads.
// A keyword matches when the lower-cased query contains it as a
// substring.
var (
	projectVocabulary = []string{
		"project", "projects", "initiative", "initiatives", "program", "programs",
		"ai safety", "bias detection", "ethics framework", "safety blueprint",
		"framework", "system", "platform", "implementation",
	}

	employeeVocabulary = []string{
		"employee", "employees", "person", "people", "team", "member", "members",
		"researcher", "engineer", "specialist", "manager", "lead", "developer",
		"worked", "working", "involved", "participated", "contributed",
	}

	outcomeVocabulary = []string{
		"outcome", "outcomes", "result", "results", "achievement", "achievements",
		"impact", "success", "benefit", "improvement", "reduction", "increase",
		"metrics", "performance", "effectiveness", "accomplished", "delivered",
	}

	reportVocabulary = []string{
		"report", "reports", "document", "documents", "documentation", "paper",
		"assessment", "analysis", "study", "findings", "publication", "summary",
	}
)
