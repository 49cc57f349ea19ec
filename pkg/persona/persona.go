// Package persona defines the caller roles the assistant serves and the
// canned text tied to each role. The set is fixed at compile time.
package persona

import "fmt"

type Type string

const (
	TypeStudent Type = "student"
	TypeParent  Type = "parent"
	TypeVisitor Type = "visitor"
)

// Persona selects which FAQ corpus and which canned fallback text apply to
// a conversation. Loaded once, read-only.
type Persona struct {
	Type     Type   `json:"type"`
	Label    string `json:"label"`
	Greeting string `json:"greeting"`
	// FallbackTemplate is returned verbatim when retrieval fails and no
	// generative provider produced an answer. It embeds Contact.
	FallbackTemplate string `json:"-"`
	// Contact is the fixed escalation identifier for this role.
	Contact string `json:"contact"`
}

const (
	studentContact = "helpdesk@saitm.edu / ext. 2200"
	parentContact  = "admissions office: +91-124-2278183"
	visitorContact = "info@saitm.edu"
)

var registry = map[Type]Persona{
	TypeStudent: {
		Type:     TypeStudent,
		Label:    "Student",
		Greeting: "Hello! I'm here to help with your academic queries, course information, and campus facilities.",
		Contact:  studentContact,
		FallbackTemplate: fmt.Sprintf(
			"I'm not sure about that one. For student matters you can reach the student helpdesk at %s, or try rephrasing your question.",
			studentContact),
	},
	TypeParent: {
		Type:     TypeParent,
		Label:    "Parent",
		Greeting: "Welcome! I can help you with admission processes, fee structures, and general college information.",
		Contact:  parentContact,
		FallbackTemplate: fmt.Sprintf(
			"I don't have a confident answer for that. Please contact the %s for admission and fee queries, or try asking differently.",
			parentContact),
	},
	TypeVisitor: {
		Type:     TypeVisitor,
		Label:    "Visitor",
		Greeting: "Hi there! I'm here to provide information about our college, courses, and admission procedures.",
		Contact:  visitorContact,
		FallbackTemplate: fmt.Sprintf(
			"I couldn't find an answer for that. You can write to %s for more details, or rephrase your question.",
			visitorContact),
	},
}

// Lookup resolves a persona type, falling back to visitor for anything
// unrecognized so an unknown caller still gets a working corpus.
func Lookup(t Type) Persona {
	if p, ok := registry[t]; ok {
		return p
	}
	return registry[TypeVisitor]
}

// All returns the personas in a stable order.
func All() []Persona {
	return []Persona{
		registry[TypeStudent],
		registry[TypeParent],
		registry[TypeVisitor],
	}
}

// Valid reports whether t names a known persona.
func Valid(t Type) bool {
	_, ok := registry[t]
	return ok
}
