package validator

import (
	"regexp"
	"slices"
)

// Pattern names recognised by Valid.
const (
	PatternString         = "string"
	PatternLetters        = "letters"
	PatternLettersExtend  = "letters_extend"
	PatternFullChars      = "fullchars"
	PatternInteger        = "integer"
	PatternMultiNum       = "multinum"
	PatternNumChars       = "num_chars"
	PatternNumCharExtends = "num_char_extends"
	PatternNumeric        = "numeric"
	PatternFloat          = "float"
	PatternRational       = "rational"
	PatternMail           = "mail"
	PatternURL            = "url"
	PatternURLExtend      = "url_extend"
	PatternURLFull        = "url_full"
	PatternPrice          = "price"
	PatternPostcode       = "postcode"
	PatternPhone          = "phone"
	PatternDate2          = "date2"
	PatternDate           = "date"
	PatternMonth          = "month"
	PatternDatetime       = "datetime"
	PatternJDate          = "jdate"
	PatternJDatetime      = "jdatetime"
	PatternTime           = "time"
	PatternHexColor       = "hex_color"
	PatternHex            = "hex"
	PatternHex2           = "hex2"
	PatternOctal          = "octal"
	PatternBinary         = "binary"
)

// patternSources holds the registry expressions. Every entry is anchored.
// jdate and jdatetime follow the jQuery datepicker output.
var patternSources = map[string]string{
	PatternString:         `^[\p{L} ]*$`,
	PatternLetters:        `^[\p{L} _,.-]*$`,
	PatternLettersExtend:  `^[\p{L}_ ,.;:-]*$`,
	PatternFullChars:      `^[\p{L}\d_ ,.;:/!@#$%^&*()+=|\\{}\]\[<>?` + "`" + `~'"-]*$`,
	PatternInteger:        `^\d*$`,
	PatternMultiNum:       `^[\d /-]*$`,
	PatternNumChars:       `^[\p{L}\d.,_ -]*$`,
	PatternNumCharExtends: `^[\p{L}\d_ ,.;:-]*$`,
	PatternNumeric:        `^-?\d*$`,
	PatternFloat:          `^-?\d*[,.]\d*$`,
	PatternRational:       `^-?\d*([,.]\d*)?$`,
	PatternMail:           `^[\w.-]*\w@[\w.-]*\.[\w-]{2,3}$`,
	PatternURL:            `^(http://)?[\w-]+\.\w{2,3}/?$`,
	PatternURLExtend:      `^((http|https|ftp|ftps)://)?[\w-]+\.\w{2,3}/?$`,
	PatternURLFull:        `^((http|https|ftp|ftps)://)?[\w-]+\.\w{2,3}([\w/-]*)?(\?[\w&%=+-]*)?$`,
	PatternPrice:          `^\d*([,.]\d{0,2})?$`,
	PatternPostcode:       `^\d{2}-\d{3}$`,
	PatternPhone:          `^(\+\d{2})?( ?\( ?\d+ ?\) ?)?[\d -]*$`,
	PatternDate2:          `^\d{2}-\d{2}-\d{4}$`,
	PatternDate:           `^\d{4}-\d{2}-\d{2}$`,
	PatternMonth:          `^\d{4}-\d{2}$`,
	PatternDatetime:       `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`,
	PatternJDate:          `^\d{2}/\d{2}/\d{4}$`,
	PatternJDatetime:      `^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`,
	PatternTime:           `^\d{2}:\d{2}(:\d{2})?$`,
	PatternHexColor:       `(?i)^#[\da-f]{6}$`,
	PatternHex:            `(?i)^#[\da-f]+$`,
	PatternHex2:           `(?i)^0x[\da-f]+$`,
	PatternOctal:          `^0[0-7]+$`,
	PatternBinary:         `(?i)^b[01]+$`,
}

// registry is compiled once at init and only read afterwards,
// so lookups are safe from any number of goroutines.
var registry = compileRegistry(patternSources)

func compileRegistry(sources map[string]string) map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(sources))
	for name, src := range sources {
		compiled[name] = regexp.MustCompile(src)
	}
	return compiled
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Pattern returns the expression registered under name.
func Pattern(name string) (string, bool) {
	src, ok := patternSources[name]
	return src, ok
}

// matchKind reports whether value matches the named pattern.
// Unknown names never match.
func matchKind(kind, value string) bool {
	re, ok := registry[kind]
	if !ok {
		return false
	}
	return re.MatchString(value)
}
