package assets

import _ "embed" // 에셋 임베드용

// ServiceMessagesYAML 는 디렉터리 서비스 메시지 YAML이다.
//
//go:embed messages/service-messages.yml
var ServiceMessagesYAML string
