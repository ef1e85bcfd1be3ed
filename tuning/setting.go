package tuning

type setting struct {
	name         string
	value        int64
	defaultValue int64
	set          bool
}

func (s *setting) get() int64 {
	return s.value
}

func (s *setting) reset() {
	s.value = s.defaultValue
	s.set = false
}

func (s *setting) assign(value int64) {
	s.value = value
	s.set = true
}

func (s *setting) isSet() bool {
	return s.set
}
