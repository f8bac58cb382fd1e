package config

import "gopkg.in/yaml.v3"

type YAMLWorkbook struct {
	Name  string     `yaml:"name"`
	Cases []YAMLCase `yaml:"cases"`
}

type YAMLCase struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Text  *string `yaml:"text"`
	Lower bool    `yaml:"lower"`

	Items     []YAMLRatedItem `yaml:"items"`
	Sequences [][]any         `yaml:"sequences"`
	Vehicle   *YAMLVehicle    `yaml:"vehicle"`

	// Value keeps the raw node so its YAML tag picks the text or number case.
	Value yaml.Node `yaml:"value"`

	Products []YAMLProduct `yaml:"products"`
	Day      *string       `yaml:"day"`
	Number   *float64      `yaml:"number"`

	MaxMS  *int                       `yaml:"max_ms"`
	Expect map[string]YAMLExpectation `yaml:"expect"`
}

type YAMLRatedItem struct {
	Title  string  `yaml:"title"`
	Rating float64 `yaml:"rating"`
}

type YAMLProduct struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

type YAMLVehicle struct {
	Make  string `yaml:"make"`
	Year  int    `yaml:"year"`
	Model string `yaml:"model"`
}

type YAMLExpectation struct {
	Exists   bool     `yaml:"exists"`
	Eq       *string  `yaml:"eq"`
	Contains *string  `yaml:"contains"`
	Matches  *string  `yaml:"matches"`
	Gt       *float64 `yaml:"gt"`
	Lt       *float64 `yaml:"lt"`
}
