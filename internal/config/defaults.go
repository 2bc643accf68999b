package config

const (
	defaultLogDir    = "~/.local/share/tidy/logs"
	defaultLockDir   = "~/.local/share/tidy/locks"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultCategory  = "Others"
)

// Default returns a Config populated with repository defaults, including the
// stock category rule table.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			LockDir: defaultLockDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Rules: Rules{
			DefaultCategory: defaultCategory,
			Categories:      defaultCategories(),
		},
	}
}

func defaultCategories() []CategoryRule {
	return []CategoryRule{
		{Name: "Audio", Extensions: []string{"aif", "cda", "mid", "midi", "mp3", "mpa", "ogg", "wav", "wma", "m4a"}},
		{Name: "Compressed", Extensions: []string{"7z", "deb", "pkg", "rar", "rpm", "z", "zip", "gz"}},
		{Name: "Code", Extensions: []string{"htm", "js", "jsp", "html", "ipynb", "py", "java", "css", "php", "json"}},
		{Name: "Documents", Extensions: []string{"ods", "odt", "rtf", "ppt", "pptx", "pdf", "xls", "xlsx", "doc", "docx", "txt", "tex", "epub"}},
		{Name: "Images", Extensions: []string{"bmp", "gif", "ico", "jpeg", "jpg", "png", "jfif", "svg", "tif", "tiff", "webp", "heic"}},
		{Name: "Softwares", Extensions: []string{"apk", "bat", "bin", "exe", "jar", "msi", "iso"}},
		{Name: "Videos", Extensions: []string{"3gp", "avi", "flv", "h264", "mkv", "mov", "mp4", "mpg", "mpeg", "wmv", "m4v"}},
		{Name: "Torrents", Extensions: []string{"torrent"}},
		{Name: "WPbackup", Extensions: []string{"wpress", "sql"}},
		{Name: "Data", Extensions: []string{"csv", "xml"}},
		{Name: "Maps", Extensions: []string{"gpx"}},
		{Name: "Graphics", Extensions: []string{"psd", "stl", "dwg"}},
		{Name: "Photos", Prefixes: []string{"IMG_"}},
	}
}
