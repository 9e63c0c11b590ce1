package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor com indentação. Em caso de erro retorna a mensagem.
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else if buffer, err = json.Marshal(in); err != nil {
		return err.Error()
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return err.Error()
	}

	return out.String()
}
