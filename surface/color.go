package surface

import "regexp"

var (
	hexColor   = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]{3,32}$`)
	funcColor  = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(\s*[0-9.%]+(\s*,\s*[0-9.%]+){2,3}\s*\)$`)
	dashList   = regexp.MustCompile(`^[0-9.]+([\s,]+[0-9.]+)*$`)
)

// ValidColor accepts #hex, CSS color names and rgb()/hsl() forms.
func ValidColor(c string) bool {
	return hexColor.MatchString(c) || namedColor.MatchString(c) || funcColor.MatchString(c)
}

// ValidDash accepts an empty dash or a stroke-dasharray number list.
func ValidDash(d string) bool {
	return d == "" || dashList.MatchString(d)
}
