package types

// Model describes a loadable language model directory on disk.
type Model struct {
	// Name used to select the model (the directory name).
	// example: en-products
	ID string `json:"id" example:"en-products"`
	// Absolute path to the model directory.
	// example: /home/user/models/nlp/en-products
	Path string `json:"path" example:"/home/user/models/nlp/en-products"`
}
