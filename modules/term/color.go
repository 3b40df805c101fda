package term

func (v Level) Yellow(s string) string {
	switch v {
	case Level16M:
		// #fee240
		return "\x1b[38;2;254;225;64m" + s + "\x1b[0m"
	case Level256:
		// \e[0;33m	Yellow
		return "\x1b[33m" + s + "\x1b[0m"
	default:
	}
	return s
}
