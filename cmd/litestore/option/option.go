package option

type Global struct {
	Database   string
	ConfigFile string
}

type Load struct {
	Global
	Table      string
	Filename   string
	Keys       []string
	TextNative bool
}

type Export struct {
	Global
	Table    string
	Filename string
}

type Describe struct {
	Global
	Table string
}

type Keys struct {
	Global
	Table string
}
