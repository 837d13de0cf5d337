package topic

// DefaultCatalog returns the built-in exam category catalog used by the CLI.
// Deployments embedding the engine supply their own.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Topic{
		{ID: "arithmetic-reasoning", DisplayName: "Arithmetic Reasoning"},
		{ID: "mathematics-knowledge", DisplayName: "Mathematics Knowledge"},
		{ID: "word-knowledge", DisplayName: "Word Knowledge"},
		{ID: "paragraph-comprehension", DisplayName: "Paragraph Comprehension"},
		{ID: "general-science", DisplayName: "General Science"},
		{ID: "mechanical-comprehension", DisplayName: "Mechanical Comprehension"},
	})
}
