/*
Package pixel screens the decoded RGB samples of an image, rather than the bytes of its file.

An image is decoded into a Grid, which keeps every pixel as an opaque R, G, B triple.
Alpha is discarded during decoding, so screened output is always fully opaque.
Grid.Screen applies the same XOR primitive as byte screening to each channel sample, and the Grid is then encoded again in a format chosen by file extension.

# Important note:

Screening pixels only survives a round trip if the output format is lossless.
PNG, BMP, and TIFF are lossless.
JPEG is lossy and GIF is limited to a 256 color palette, so decrypting a screened JPEG or GIF will only approximate the original image.
*/
package pixel
