package avro

// EmailMessageSchema describes one outbound email on the notification topic.
const EmailMessageSchema = `{
	"type": "record",
	"name": "EmailMessage",
	"namespace": "com.petrobahia.notification",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "to", "type": "string"},
		{"name": "subject", "type": "string"},
		{"name": "body", "type": "string"},
		{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`
