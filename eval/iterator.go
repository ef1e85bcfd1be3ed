package eval

type (
	// Iterable is the capability a container must expose to be iterated through the generic
	// protocol. Iter returns false when the receiver cannot produce an iterator.
	Iterable interface {
		Iter() (Iterator, bool)
	}

	// Iterator is the object returned from Iterable.Iter.
	//
	// Next returns the next element. Exhaustion is signalled by returning (or panicking with) an
	// *errors.StopIteration. Any other error is a failure that the caller must handle.
	Iterator interface {
		Next() (Value, error)
	}

	// HasNexter is an optional capability of an Iterator. When present, HasNext is consulted
	// before every call to Next and Next is never called once HasNext has returned false.
	HasNexter interface {
		HasNext() (bool, error)
	}
)
