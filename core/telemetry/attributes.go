package telemetry

import "go.opentelemetry.io/otel/attribute"

type OperationTypeNum int

func (t OperationTypeNum) String() string {
	switch t {
	case OperationSign:
		return "sign"
	case OperationVerify:
		return "verify"
	case OperationHash:
		return "hash"
	case OperationAddress:
		return "address"
	case OperationKeygen:
		return "keygen"
	case OperationUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	OperationUnknown OperationTypeNum = iota
	OperationSign
	OperationVerify
	OperationHash
	OperationAddress
	OperationKeygen
)

func OperationType(t OperationTypeNum) attribute.KeyValue {
	return attribute.String("operation_type", t.String())
}

func OperationID(id string) attribute.KeyValue {
	return attribute.String("operation_id", id)
}

func Network(name string) attribute.KeyValue {
	return attribute.String("network", name)
}

func Valid(valid bool) attribute.KeyValue {
	return attribute.Bool("valid", valid)
}

func Reason(reason string) attribute.KeyValue {
	return attribute.String("reason", reason)
}
