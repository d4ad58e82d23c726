package hashring

// Member interface represents a member in the hash ring. The value returned by
// String is the member's identity: two members with the same String are the
// same member as far as the ring is concerned.
type Member interface {
	String() string
}

// StringMember is a member identified by the string itself.
type StringMember string

func (s StringMember) String() string {
	return string(s)
}

// KeyedMember carries an arbitrary payload under an explicit key. Only Key
// takes part in placement and de-duplication.
type KeyedMember[T any] struct {
	Key   string
	Value T
}

func (k KeyedMember[T]) String() string {
	return k.Key
}

func keyFor[M Member](member M) string {
	return member.String()
}
