package domain

// TopicKind is one of the fixed insight categories for a catalog entity.
type TopicKind string

const (
	TopicDescription TopicKind = "description"
	TopicCultural    TopicKind = "cultural"
	TopicTravel      TopicKind = "travel"
)

// Topics lists the insight tabs in display order.
var Topics = []TopicKind{TopicDescription, TopicCultural, TopicTravel}

// Valid reports whether t belongs to the closed topic set.
func (t TopicKind) Valid() bool {
	switch t {
	case TopicDescription, TopicCultural, TopicTravel:
		return true
	}
	return false
}
