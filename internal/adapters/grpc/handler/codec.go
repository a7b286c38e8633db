package handler

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName は JSON コーデックの content-subtype です。
const CodecName = "json"

// JSONCodec は gRPC メッセージを JSON で符号化します。protoc による生成コードを持たないため、
// サーバー・クライアントの双方でこのコーデックを強制します。
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(JSONCodec{})
}
