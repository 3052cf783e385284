// Package config loads and saves the vadmin.json project file and watches
// it for changes during development.
package config
