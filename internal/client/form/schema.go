package form

import "net/mail"

// Field names match the wire field names so validation errors line up
// with what the rendering layer labels its inputs.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldEmail      Field = "email"
	FieldPassword   Field = "password"
	FieldLocation   Field = "location"
	FieldOccupation Field = "occupation"
	FieldPicture    Field = "picture"
)

// Draft is the transient, unsaved form state. Login mode uses only Email
// and Password; Register uses every field including the staged Picture.
type Draft struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Location   string
	Occupation string
	Picture    Picture
}

// Picture is a staged image: the source file's name and a base64 data URL
// of its content. Registration requires both to be non-empty.
type Picture struct {
	Name      string
	Base64URL string
}

type fieldRule struct {
	field Field
	check func(Draft) string
}

// schemaDef binds a mode to its initial draft values and required-field
// rules. Everything mode-dependent lives in this one table.
type schemaDef struct {
	initial Draft
	rules   []fieldRule
}

func requiredRule(f Field, get func(Draft) string) fieldRule {
	return fieldRule{field: f, check: func(d Draft) string {
		if get(d) == "" {
			return "required"
		}
		return ""
	}}
}

func emailRule(f Field, get func(Draft) string) fieldRule {
	return fieldRule{field: f, check: func(d Draft) string {
		v := get(d)
		if v == "" {
			return "required"
		}
		if _, err := mail.ParseAddress(v); err != nil {
			return "invalid email"
		}
		return ""
	}}
}

// A staged image is required as a whole: a pending encode (name set, data
// not yet merged) still fails validation rather than passing as present.
func pictureRule() fieldRule {
	return fieldRule{field: FieldPicture, check: func(d Draft) string {
		if d.Picture.Name == "" || d.Picture.Base64URL == "" {
			return "required"
		}
		return ""
	}}
}

var schemas = map[Mode]schemaDef{
	ModeLogin: {
		initial: Draft{},
		rules: []fieldRule{
			emailRule(FieldEmail, func(d Draft) string { return d.Email }),
			requiredRule(FieldPassword, func(d Draft) string { return d.Password }),
		},
	},
	ModeRegister: {
		initial: Draft{},
		rules: []fieldRule{
			requiredRule(FieldFirstName, func(d Draft) string { return d.FirstName }),
			requiredRule(FieldLastName, func(d Draft) string { return d.LastName }),
			emailRule(FieldEmail, func(d Draft) string { return d.Email }),
			requiredRule(FieldPassword, func(d Draft) string { return d.Password }),
			requiredRule(FieldLocation, func(d Draft) string { return d.Location }),
			requiredRule(FieldOccupation, func(d Draft) string { return d.Occupation }),
			pictureRule(),
		},
	},
}

// validate applies the mode's schema and returns one message per failing
// field. An empty map means the draft may be submitted.
func validate(m Mode, d Draft) map[Field]string {
	errs := make(map[Field]string)
	for _, r := range schemas[m].rules {
		if msg := r.check(d); msg != "" {
			errs[r.field] = msg
		}
	}
	return errs
}
