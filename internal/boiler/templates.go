package boiler

const gitignoreText = `# Dependencies
node_modules/
vendor/
__pycache__/
*.pyc
target/

# Build
dist/
build/
*.so
*.exe

# IDE
.vscode/
.idea/
*.swp

# Environment
.env
.env.local

# Logs
*.log
logs/
`

const licenseText = `MIT License

Copyright (c) 2024

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction.
`

const ciWorkflowText = `name: CI

on: [push, pull_request]

jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v3
      - name: Run tests
        run: |
          npm install
          npm test

  build:
    runs-on: ubuntu-latest
    needs: test
    steps:
      - uses: actions/checkout@v3
      - name: Build
        run: npm run build
`

const readmeTemplate = `# %s

%s implementation

## Features

- Feature 1
- Feature 2
- Feature 3

## Installation

` + "```bash" + `
# Install dependencies
npm install  # or pip install -r requirements.txt
` + "```" + `

## Usage

` + "```bash" + `
# Run the application
npm start
` + "```" + `

## Testing

` + "```bash" + `
# Run tests
npm test
` + "```" + `

## License

MIT
`

const packageJSONTemplate = `{
  "name": "%s",
  "version": "1.0.0",
  "description": "%s project",
  "main": "src/index.js",
  "scripts": {
    "test": "jest",
    "build": "webpack",
    "start": "node src/index.js"
  },
  "dependencies": {
    "express": "^4.18.0",
    "lodash": "^4.17.21"
  },
  "devDependencies": {
    "jest": "^29.0.0",
    "webpack": "^5.75.0"
  }
}
`

const setupPyTemplate = `from setuptools import setup, find_packages

setup(
    name="%s",
    version="1.0.0",
    description="%s project",
    packages=find_packages(),
    install_requires=[
        "requests>=2.28.0",
        "pydantic>=1.10.0",
    ],
    python_requires=">=3.8",
)
`

const requirementsText = `requests>=2.28.0
pydantic>=1.10.0
pytest>=7.2.0
black>=22.10.0
flake8>=5.0.0
`

const goModTemplate = `module github.com/example/%s

go 1.19

require (
    github.com/gin-gonic/gin v1.9.0
    github.com/stretchr/testify v1.8.1
)
`

const cargoTomlTemplate = `[package]
name = "%s"
version = "1.0.0"
edition = "2021"

[dependencies]
tokio = { version = "1.25", features = ["full"] }
serde = { version = "1.0", features = ["derive"] }
`

const gemfileText = `source 'https://rubygems.org'

gem 'rails', '~> 7.0'
gem 'pg', '~> 1.4'

group :development, :test do
  gem 'rspec-rails', '~> 6.0'
end
`

const pomXMLTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.example</groupId>
    <artifactId>%s</artifactId>
    <version>1.0.0</version>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
            <version>3.0.0</version>
        </dependency>
    </dependencies>
</project>
`

const dockerComposeText = `version: '3.8'
services:
  app:
    build: .
    ports:
      - "8000:8000"
    environment:
      - DATABASE_URL=postgresql://user:pass@db:5432/dbname
  db:
    image: postgres:15
    environment:
      - POSTGRES_PASSWORD=pass
`

const dockerfilePython = `FROM python:3.11-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install -r requirements.txt
COPY . .
CMD ["python", "src/main.py"]
`

const dockerfileNode = `FROM node:18-alpine
WORKDIR /app
COPY package*.json ./
RUN npm install
COPY . .
CMD ["npm", "start"]
`

const k8sDeploymentTemplate = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: %s
spec:
  replicas: 3
  selector:
    matchLabels:
      app: %s
  template:
    metadata:
      labels:
        app: %s
    spec:
      containers:
      - name: app
        image: %s:latest
        ports:
        - containerPort: 8000
`

const k8sServiceTemplate = `apiVersion: v1
kind: Service
metadata:
  name: %s
spec:
  selector:
    app: %s
  ports:
  - port: 80
    targetPort: 8000
  type: LoadBalancer
`

const terraformText = `terraform {
  required_version = ">= 1.0"
}

provider "aws" {
  region = "us-west-2"
}

resource "aws_instance" "app" {
  ami           = "ami-0c55b159cbfafe1f0"
  instance_type = "t2.micro"
}
`

const sqlMigrationText = `-- Migration: Create users table
CREATE TABLE users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX idx_users_email ON users(email);
`
