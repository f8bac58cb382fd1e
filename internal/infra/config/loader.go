package config

import (
	"os"

	"github.com/aalvaropc/kata/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadWorkbook(path string) (domain.Workbook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "config.load_workbook",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLWorkbook
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "config.load_workbook",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapWorkbook(path, dto)
}
