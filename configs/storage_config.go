package configs

// структура конфига для файлового хранилища вакансий
type StorageConfig struct {
	Dir string `yaml:"dir" validate:"required"` // каталог, где лежат json-файлы по ключевым словам
}

// функция, которая возвращает указатель на дэфолтный конфиг хранилища
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Dir: ".",
	}
}
