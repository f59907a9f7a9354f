package hcl

// fileSchema is the top-level structure of covrunner.hcl for decoding.
// Unknown blocks and attributes are rejected by gohcl.
type fileSchema struct {
	Project *projectBlock `hcl:"project,block"`
	Tool    *toolBlock    `hcl:"tool,block"`
}

type projectBlock struct {
	Marker string `hcl:"marker,optional"`
}

type toolBlock struct {
	Command string   `hcl:"command,optional"`
	Source  string   `hcl:"source,optional"`
	Args    []string `hcl:"args,optional"`
}
