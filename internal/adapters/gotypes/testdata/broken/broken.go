package broken

type Broken struct {
	Field undefinedType
}
