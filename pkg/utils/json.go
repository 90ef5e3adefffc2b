package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor com indentação por tabulação.
// Um []byte é tratado como JSON já serializado.
func PrettyJson(in any) string {
	buffer, isRaw := in.([]byte)
	if !isRaw {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("PrettyJson: erro ao serializar")
			return ""
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Warn("PrettyJson: conteúdo não é JSON válido")
		return string(buffer)
	}

	return out.String()
}
