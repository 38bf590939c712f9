package config

// DefaultConfigYAML 内置默认配置
// 外部 config.yaml 和 FINTRACK_ 前缀的环境变量可以覆盖其中任意项
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: ""

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: "root"
  dbname: "fintrack"
  charset: "utf8mb4"

jwt:
  secret: "fintrack-dev-secret-change-me"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: ""
`)
