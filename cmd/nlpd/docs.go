package main

// General API documentation for swaggo. Run `swag init -g cmd/nlpd/docs.go` to regenerate docs.
//
// @title           nlpd API
// @version         1.0
// @description     HTTP API for named-entity and part-of-speech tagging.
//
// @contact.name   nlpd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
