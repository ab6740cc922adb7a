package configuration

type LogConfiguration struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` //text or json
	Output string `yaml:"output"` //stderr or filelog
	Path   string `yaml:"path"`   //log file path when Output is filelog
}

func DefLogConfiguration() *LogConfiguration {
	return &LogConfiguration{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
}
