//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import "github.com/IBM/sarama"

// producer - входной канал sarama.AsyncProducer
type producer interface {
	Input() chan<- *sarama.ProducerMessage
}
