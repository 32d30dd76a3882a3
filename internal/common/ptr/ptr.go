package ptr

// String: 문자열 포인터를 만든다.
func String(v string) *string { return &v }

// Int: int 포인터를 만든다.
func Int(v int) *int { return &v }

// Uint64: uint64 포인터를 만든다.
func Uint64(v uint64) *uint64 { return &v }

// Bool: bool 포인터를 만든다.
func Bool(v bool) *bool { return &v }
