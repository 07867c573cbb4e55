package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON formata qualquer valor com indentação de dois espaços
func PrettyJSON(in any) (string, error) {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
