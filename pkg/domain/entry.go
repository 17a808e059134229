package domain

// Status is the classification state of a table entry.
type Status uint8

const (
	// StatusUnresolved marks a key the sieve has not reached yet.
	StatusUnresolved Status = iota
	// StatusZero marks a diagram whose whole class vanishes.
	StatusZero
	// StatusRelated marks a diagram derived from a representative.
	// Related(Identity, self) is an independent diagram.
	StatusRelated
)

func (s Status) String() string {
	switch s {
	case StatusZero:
		return "zero"
	case StatusRelated:
		return "related"
	default:
		return "unresolved"
	}
}

// Classification is the downstream view of an entry.
type Classification string

const (
	ClassUnresolved  Classification = "unresolved"
	ClassZero        Classification = "zero"
	ClassIndependent Classification = "independent"
	ClassRelated     Classification = "related"
)

// Entry is one row of the dependency table.
type Entry struct {
	Key            Key
	Status         Status
	Transformation Transformation
	Representative Key
}

// Zero returns a zero entry for key.
func Zero(key Key) Entry {
	return Entry{Key: key, Status: StatusZero}
}

// Related returns an entry deriving key from rep via t.
func Related(key Key, t Transformation, rep Key) Entry {
	return Entry{Key: key, Status: StatusRelated, Transformation: t, Representative: rep}
}

// Independent returns the self-related identity entry.
func Independent(key Key) Entry {
	return Related(key, IdentityT, key)
}

// IsIndependent reports whether e is Related(Identity, self).
func (e Entry) IsIndependent() bool {
	return e.Status == StatusRelated && e.Transformation.IsIdentity() && e.Representative == e.Key
}

// Classification maps the stored status to the downstream four-way view.
func (e Entry) Classification() Classification {
	switch {
	case e.Status == StatusZero:
		return ClassZero
	case e.IsIndependent():
		return ClassIndependent
	case e.Status == StatusRelated:
		return ClassRelated
	default:
		return ClassUnresolved
	}
}
