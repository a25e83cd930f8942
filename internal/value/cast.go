package value

// CastTo casts v into the dst reference. A *Value destination receives v
// itself, any other destination is dispatched to the concrete kind's cast.
func CastTo(v Value, dst interface{}) error {
	if dst == nil {
		return errNilDestination
	}
	if ptr, has := dst.(*Value); has {
		*ptr = v

		return nil
	}

	return v.castTo(dst)
}
