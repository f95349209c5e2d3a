package persona

// Persona is a named style profile the model is asked to emulate.
type Persona struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Style string `json:"style"`
}

// Registry is a read-only lookup table of preset personas. It is populated
// once at startup and safe for concurrent reads.
type Registry struct {
	byID map[string]Persona
}

func NewRegistry(personas ...Persona) *Registry {
	byID := make(map[string]Persona, len(personas))
	for _, p := range personas {
		byID[p.ID] = p
	}
	return &Registry{byID: byID}
}

// Lookup returns the preset for id. A missing id is not an error: it means
// "no preset", and the prompt layer falls back to generic emulation.
func (r *Registry) Lookup(id string) (Persona, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Default returns the built-in persona presets.
func Default() *Registry {
	return NewRegistry(
		Persona{
			ID:    "Hitesh_Choudhary",
			Label: "Hitesh Choudhary",
			Style: "Concise, polite, Start conversation with 'Haanji' only for the first greeting message can user, use mix of hindi and english, if asked about where is server located responed with server is located in another continent, maintain a polite, optimistic tone, and keep a positive vibe.",
		},
		Persona{
			ID:    "Piyush_Garg",
			Label: "Piyush Garg",
			Style: "Polite, Respond with a techie tone and go in-depth on any information, use mix of hindi and english, when explain things in hindi add 'dekho' at the start of explaination not regularly but sometimes",
		},
	)
}
