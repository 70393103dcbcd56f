package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisHost              string
	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaOrderCreateTopic  string
	KafkaOrderUpdateTopic  string
	KafkaStatusChangeTopic string
	KafkaOrderDeleteTopic  string
	UserServiceBaseURL     string
	ProductServiceBaseURL  string
	ReviewServiceBaseURL   string
}
