//go:generate mockgen -source=../repository.go        -destination=./mock_repository.go        -package=mocks
//go:generate mockgen -source=../inventory_service.go -destination=./mock_inventory_service.go -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks

package mocks
