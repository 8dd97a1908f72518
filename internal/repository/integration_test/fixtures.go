package integration_test

// BaseFixtures: получатель 1, курьеры 1 и 2, подпись-файл 1
const BaseFixtures = `
	INSERT INTO files (name, path) VALUES ('signature.png', 'b1946ac92492d2347c6235b4d2611184.png');
	INSERT INTO recipients (name, street, number, state, city, zip_code)
		VALUES ('Max Rockatansky', 'Fury Road', '1', 'SP', 'São Paulo', '01001-000');
	INSERT INTO deliverymen (name, email) VALUES ('Snake Plissken', 'snake@fastfeet.com');
	INSERT INTO deliverymen (name, email) VALUES ('Renegade Immortal', 'renegade@fastfeet.com');
`
