package config

// defaultsFile represents the structure of the bootstrap.yaml defaults file.
type defaultsFile struct {
	BuildDir      string `yaml:"buildDir"`
	Swiftc        string `yaml:"swiftc"`
	LLBuildSource string `yaml:"llbuildSource"`
	LLBuildBuild  string `yaml:"llbuildBuild"`
	LinkFramework bool   `yaml:"linkFramework"`
	InstallPrefix string `yaml:"installPrefix"`
}
