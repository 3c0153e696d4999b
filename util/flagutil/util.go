package flagutil

type StringFuncFlag func(string) error

func (v StringFuncFlag) String() string     { return "" }
func (v StringFuncFlag) Set(s string) error { return v(s) }
